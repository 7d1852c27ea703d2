// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package recommend

import "strings"

// Age buckets used by the demographic tables.
const (
	BucketChild      = "0-12"
	BucketTeen       = "13-19"
	BucketYoungAdult = "20-34"
	BucketAdult      = "35-49"
	BucketMiddleAge  = "50-64"
	BucketSenior     = "65+"
)

// AgeBucket maps an age in years to its bucket label. Every integer has a
// bucket; anything at or below 12 is a child.
func AgeBucket(age int) string {
	switch {
	case age <= 12:
		return BucketChild
	case age <= 19:
		return BucketTeen
	case age <= 34:
		return BucketYoungAdult
	case age <= 49:
		return BucketAdult
	case age <= 64:
		return BucketMiddleAge
	default:
		return BucketSenior
	}
}

// DemographicKey returns "<lowercased gender>|<age bucket>".
func DemographicKey(gender string, age int) string {
	return strings.ToLower(gender) + "|" + AgeBucket(age)
}
