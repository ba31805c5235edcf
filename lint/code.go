/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

// Code identifies the reason a linter rejected a component value.
type Code int

const (
	OK Code = iota
	NonDigit
	InvalidCSet82
	InvalidCSet39
	InvalidCSet32
	InvalidCSet64
	InvalidCSet64Padding
	IncorrectCheckDigit
	TooShortForCheckDigit
	IncorrectCheckPair
	TooShortForCheckPair
	TooLongForCheckPair
	InvalidGCPPrefix
	TooShortForGCP
	ImporterIdxNotOneChar
	InvalidImporterIdx
	IllegalZero
	NotZero
	IllegalZeroPrefix
	NotZeroOrOne
	InvalidWinding
	NotISO3166
	NotISO3166Or999
	NotISO3166Alpha2
	NotISO4217
	InvalidBiologicalSex
	IBANTooShort
	IBANTooLong
	InvalidIBANCharacter
	IllegalIBANCountry
	IncorrectIBANChecksum
	DateTooShort
	DateTooLong
	DateWithHourTooShort
	DateWithHourTooLong
	IllegalMonth
	IllegalDay
	IllegalHour
	IllegalMinute
	IllegalSecond
	HourTooShort
	HourTooLong
	MinuteTooShort
	MinuteTooLong
	SecondTooShort
	SecondTooLong
	HourWithMinuteTooShort
	HourWithMinuteTooLong
	MinuteSecondBadLength
	PieceOfTotalBadLength
	ZeroPieceNumber
	ZeroTotalPieces
	PieceExceedsTotal
	InvalidPercentSequence
	PositionMalformed
	PositionExceedsEnd
	RequiresNonDigit
	InvalidLatitude
	InvalidLongitude
	LatitudeBadLength
	LongitudeBadLength
	LatLongBadLength
	InvalidMediaType
	InvalidPackageType
	NotHyphen

	CouponMissingFormatCode
	CouponInvalidFormatCode
	CouponMissingFunderVLI
	CouponInvalidFunderLength
	CouponTruncatedFunder
	CouponTruncatedOfferCode
	CouponMissingSerialNumberVLI
	CouponTruncatedSerialNumber
	CouponMissingGCPVLI
	CouponInvalidGCPLength
	CouponTruncatedGCP
	CouponMissingSaveValueVLI
	CouponInvalidSaveValueLength
	CouponTruncatedSaveValue
	CouponMissingFirstReqVLI
	CouponInvalidFirstReqLength
	CouponTruncatedFirstReq
	CouponMissingFirstReqCode
	CouponInvalidFirstReqCode
	CouponTruncatedFirstFamilyCode
	CouponMissingAdditionalRulesCode
	CouponInvalidAdditionalRulesCode
	CouponMissingSecondReqVLI
	CouponInvalidSecondReqLength
	CouponTruncatedSecondReq
	CouponMissingSecondReqCode
	CouponInvalidSecondReqCode
	CouponTruncatedSecondFamilyCode
	CouponMissingSecondGCPVLI
	CouponInvalidSecondGCPLength
	CouponTruncatedSecondGCP
	CouponMissingThirdReqVLI
	CouponInvalidThirdReqLength
	CouponTruncatedThirdReq
	CouponMissingThirdReqCode
	CouponInvalidThirdReqCode
	CouponTruncatedThirdFamilyCode
	CouponMissingThirdGCPVLI
	CouponInvalidThirdGCPLength
	CouponTruncatedThirdGCP
	CouponExpirationTooShort
	CouponInvalidExpiration
	CouponStartDateTooShort
	CouponInvalidStartDate
	CouponExpirationBeforeStart
	CouponMissingRetailerVLI
	CouponInvalidRetailerLength
	CouponTruncatedRetailer
	CouponMissingSaveValueCode
	CouponInvalidSaveValueCode
	CouponMissingSaveValueItem
	CouponInvalidSaveValueItem
	CouponMissingStoreFlag
	CouponMissingDontMultiplyFlag
	CouponInvalidDontMultiplyFlag
	CouponExcessData
)

var codeMessages = map[Code]string{
	OK:                     "No issues were detected by the linter.",
	NonDigit:               "A non-digit character was found where a digit is expected.",
	InvalidCSet82:          "A non-CSET 82 character was found where a CSET 82 character is expected.",
	InvalidCSet39:          "A non-CSET 39 character was found where a CSET 39 character is expected.",
	InvalidCSet32:          "A non-CSET 32 character was found where a CSET 32 character is expected.",
	InvalidCSet64:          "A non-CSET 64 character was found where a CSET 64 character is expected.",
	InvalidCSet64Padding:   "Incorrect number of CSET 64 pad characters.",
	IncorrectCheckDigit:    "The numeric check digit is incorrect.",
	TooShortForCheckDigit:  "The component is too short to perform a numeric check digit calculation.",
	IncorrectCheckPair:     "The alphanumeric check-character pair are incorrect.",
	TooShortForCheckPair:   "The component is too short to perform an alphanumeric check character pair calculation.",
	TooLongForCheckPair:    "The component is too long to perform an alphanumeric check character pair calculation.",
	InvalidGCPPrefix:       "The GS1 Company Prefix is invalid.",
	TooShortForGCP:         "The component is shorter than the minimum length GS1 Company Prefix.",
	ImporterIdxNotOneChar:  "The Importer Index must be a single character.",
	InvalidImporterIdx:     "The Importer Index is an invalid character.",
	IllegalZero:            "A non-zero value is required.",
	NotZero:                "A zero is required.",
	IllegalZeroPrefix:      "A zero prefix is not permitted.",
	NotZeroOrOne:           "A \"0\" or \"1\" is required.",
	InvalidWinding:         "The winding direction must be either \"0\", \"1\" or \"9\".",
	NotISO3166:             "A valid ISO 3166 three-digit country code is required.",
	NotISO3166Or999:        "A valid ISO 3166 three-digit country code or \"999\" is required.",
	NotISO3166Alpha2:       "A valid ISO 3166 two-character country code is required.",
	NotISO4217:             "A valid ISO 4217 three-digit currency code is required.",
	InvalidBiologicalSex:   "A valid ISO/IEC 5218 biological sex code required.",
	IBANTooShort:           "The IBAN is too short.",
	IBANTooLong:            "The IBAN is too long.",
	InvalidIBANCharacter:   "The IBAN contains an invalid character.",
	IllegalIBANCountry:     "The IBAN must start with a valid ISO 3166 two-character country code.",
	IncorrectIBANChecksum:  "The IBAN is invalid since the check characters are incorrect.",
	DateTooShort:           "The date is too short.",
	DateTooLong:            "The date is too long.",
	DateWithHourTooShort:   "The date with hour is too short for YYMMDDHH format.",
	DateWithHourTooLong:    "The date with hour is too long for YYMMDDHH format.",
	IllegalMonth:           "The date contains an illegal month of the year.",
	IllegalDay:             "The date contains an illegal day of the month.",
	IllegalHour:            "The time contains an illegal hour.",
	IllegalMinute:          "The time contains an illegal minute.",
	IllegalSecond:          "The time contains an illegal seconds.",
	HourTooShort:           "The hour is too short for HH format.",
	HourTooLong:            "The hour is too long for HH format.",
	MinuteTooShort:         "The minute is too short for MI format.",
	MinuteTooLong:          "The minute is too long for MI format.",
	SecondTooShort:         "The second is too short for SS format.",
	SecondTooLong:          "The second is too long for SS format.",
	HourWithMinuteTooShort: "The hour with minute is too short for HHMI format.",
	HourWithMinuteTooLong:  "The hour with minute is too long for HHMI format.",
	MinuteSecondBadLength:  "The minute with optional seconds must be either two or four digits.",
	PieceOfTotalBadLength:  "The piece with total must have an even length, having equal-length components.",
	ZeroPieceNumber:        "The piece number must not have a value of zero.",
	ZeroTotalPieces:        "The piece total must not have a value of zero.",
	PieceExceedsTotal:      "The piece number must not exceed the piece total.",
	InvalidPercentSequence: "The input contains an invalid percent hex-encoding \"%hh\" sequence.",
	PositionMalformed:      "The data must have the format \"<pos>/<end>\".",
	PositionExceedsEnd:     "The position number must not exceed the end number.",
	RequiresNonDigit:       "A non-digit character is required.",
	InvalidLatitude:        "The latitude is outside of the range \"0000000000\" to \"1800000000\".",
	InvalidLongitude:       "The longitude is outside of the range \"0000000000\" to \"3600000000\".",
	LatitudeBadLength:      "The latitude must be 10 digits.",
	LongitudeBadLength:     "The longitude must be 10 digits.",
	LatLongBadLength:       "The latitude with longitude must be 20 digits.",
	InvalidMediaType:       "A valid AIDC media type is required.",
	InvalidPackageType:     "A valid PackageTypeCode is required.",
	NotHyphen:              "Only hyphens are permitted.",

	CouponMissingFormatCode:          "The coupon's Format Code is missing.",
	CouponInvalidFormatCode:          "The coupon's Format Code must be \"0\" or \"1\".",
	CouponMissingFunderVLI:           "The coupon's Funder VLI is missing.",
	CouponInvalidFunderLength:        "The coupon's Funder VLI must be \"0\" to \"6\".",
	CouponTruncatedFunder:            "The coupon's Funder is shorter than what is indicated by its VLI.",
	CouponTruncatedOfferCode:         "The coupon's Offer Code is shorter than the required six digits.",
	CouponMissingSerialNumberVLI:     "The coupon's Serial Number VLI is missing.",
	CouponTruncatedSerialNumber:      "The coupon's Serial Number is shorter than what is indicated by its VLI.",
	CouponMissingGCPVLI:              "The coupon's primary GS1 Company Prefix VLI is missing.",
	CouponInvalidGCPLength:           "The coupon's primary GS1 Company Prefix VLI must be \"0\" to \"6\".",
	CouponTruncatedGCP:               "The coupon's primary GS1 Company Prefix is shorter than what is indicated by its VLI.",
	CouponMissingSaveValueVLI:        "The coupon's Save Value VLI is missing.",
	CouponInvalidSaveValueLength:     "The coupon's Save Value VLI must be \"1\" to \"5\".",
	CouponTruncatedSaveValue:         "The coupon's Save Value is shorter than what is indicated by its VLI.",
	CouponMissingFirstReqVLI:         "The coupon's primary purchase Requirement VLI is missing.",
	CouponInvalidFirstReqLength:      "The coupon's primary purchase Requirement VLI must be \"1\" to \"5\".",
	CouponTruncatedFirstReq:          "The coupon's primary purchase Requirement is shorter than what is indicated by its VLI.",
	CouponMissingFirstReqCode:        "The coupon's primary purchase Requirement Code is missing.",
	CouponInvalidFirstReqCode:        "The coupon's primary purchase Requirement Code must be \"0\" to \"4\" or \"9\".",
	CouponTruncatedFirstFamilyCode:   "The coupon's primary purchase Family Code is shorter than the required three digits.",
	CouponMissingAdditionalRulesCode: "The coupon's Additional Purchase Rules Code is missing.",
	CouponInvalidAdditionalRulesCode: "The coupon's Additional Purchase Rules Code must be \"0\" to \"3\".",
	CouponMissingSecondReqVLI:        "The coupon's second purchase Requirement VLI is missing.",
	CouponInvalidSecondReqLength:     "The coupon's second purchase Requirement VLI must be \"1\" to \"5\".",
	CouponTruncatedSecondReq:         "The coupon's second purchase Requirement is shorter than what is indicated by its VLI.",
	CouponMissingSecondReqCode:       "The coupon's second purchase Requirement Code is missing.",
	CouponInvalidSecondReqCode:       "The coupon's second purchase Requirement Code must be \"0\" to \"4\" or \"9\".",
	CouponTruncatedSecondFamilyCode:  "The coupon's second purchase Family Code is shorter than the required three digits.",
	CouponMissingSecondGCPVLI:        "The coupon's second purchase GS1 Company Prefix VLI is missing.",
	CouponInvalidSecondGCPLength:     "The coupon's second purchase GS1 Company Prefix VLI must be \"0\" to \"6\" or \"9\".",
	CouponTruncatedSecondGCP:         "The coupon's second purchase GS1 Company Prefix is shorter than what is indicated by its VLI.",
	CouponMissingThirdReqVLI:         "The coupon's third purchase Requirement VLI is missing.",
	CouponInvalidThirdReqLength:      "The coupon's third purchase Requirement VLI must be \"1\" to \"5\".",
	CouponTruncatedThirdReq:          "The coupon's third purchase Requirement is shorter than what is indicated by its VLI.",
	CouponMissingThirdReqCode:        "The coupon's third purchase Requirement Code is missing.",
	CouponInvalidThirdReqCode:        "The coupon's third purchase Requirement Code must be \"0\" to \"4\" or \"9\".",
	CouponTruncatedThirdFamilyCode:   "The coupon's third purchase Family Code is shorter than the required three digits.",
	CouponMissingThirdGCPVLI:         "The coupon's third purchase GS1 Company Prefix VLI is missing.",
	CouponInvalidThirdGCPLength:      "The coupon's third purchase GS1 Company Prefix VLI must be \"0\" to \"6\" or \"9\".",
	CouponTruncatedThirdGCP:          "The coupon's third purchase GS1 Company Prefix is shorter than what is indicated by its VLI.",
	CouponExpirationTooShort:         "The coupon's expiration date is too short for YYMMDD format.",
	CouponInvalidExpiration:          "The coupon's expiration date is invalid.",
	CouponStartDateTooShort:          "The coupon's start date is too short for YYMMDD format.",
	CouponInvalidStartDate:           "The coupon's start date is invalid.",
	CouponExpirationBeforeStart:      "The coupon's expiration date precedes the start date.",
	CouponMissingRetailerVLI:         "The coupon's Retailer GCP/GLN VLI is missing.",
	CouponInvalidRetailerLength:      "The coupon's Retailer GCP/GLN VLI must be \"1\" to \"7\".",
	CouponTruncatedRetailer:          "The coupon's Retailer GCP/GLN is shorter than what is indicated by its VLI.",
	CouponMissingSaveValueCode:       "The coupon's Save Value Code is missing.",
	CouponInvalidSaveValueCode:       "The coupon's Save Value Code must be \"0\", \"1\", \"2\", \"5\" or \"6\".",
	CouponMissingSaveValueItem:       "The coupon's Save Value Applies to Item is missing.",
	CouponInvalidSaveValueItem:       "The coupon's Save Value Applies to Item must be \"0\" to \"2\".",
	CouponMissingStoreFlag:           "The coupon's Store Coupon Flag is missing.",
	CouponMissingDontMultiplyFlag:    "The coupon's Don't Multiply Flag is missing.",
	CouponInvalidDontMultiplyFlag:    "The coupon's Don't Multiply Flag must be \"0\" or \"1\".",
	CouponExcessData:                 "The coupon contains excess data after the recognised optional fields.",
}

// String returns the human-readable reason text for the code. The session
// layer substitutes it into "AI (nn): <reason>" error messages.
func (c Code) String() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "Unknown linter failure."
}
