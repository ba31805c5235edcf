/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

// couponScanner walks a coupon code field by field, blaming the remainder of
// the data when a field is truncated, as the NACC guideline prescribes.
type couponScanner struct {
	data string
	pos  int
}

func (s *couponScanner) remaining() int { return len(s.data) - s.pos }

// tailViolation blames the unconsumed data, or everything when the data ran
// out exactly at the field boundary.
func (s *couponScanner) tailViolation(code Code) *Violation {
	if s.remaining() == 0 {
		return violation(code, 0, len(s.data))
	}
	return violation(code, s.pos, s.remaining())
}

// CouponCode ensures that the component conforms to the original North
// American Coupon Code specification carried in AI (8110): a GCP, Offer
// Code, Save Value and purchase requirement, then optional fields keyed by a
// single leading digit.
func CouponCode(data string) *Violation {
	if v := CSetNumeric(data); v != nil {
		return v
	}

	s := &couponScanner{data: data}

	// Primary GCP, VLI "0" to "6" meaning length VLI+6.
	if s.remaining() == 0 {
		return violation(CouponMissingGCPVLI, 0, len(data))
	}
	if data[s.pos] > '6' {
		return violation(CouponInvalidGCPLength, s.pos, 1)
	}
	vli := int(data[s.pos]-'0') + 6
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(CouponTruncatedGCP)
	}
	if v := GCPPos1(data[s.pos : s.pos+vli]); v != nil {
		return violation(v.Code, s.pos, vli)
	}
	s.pos += vli

	// Six digit Offer Code.
	if s.remaining() < 6 {
		return s.tailViolation(CouponTruncatedOfferCode)
	}
	s.pos += 6

	// Save Value, VLI "1" to "5".
	if s.remaining() == 0 {
		return violation(CouponMissingSaveValueVLI, 0, len(data))
	}
	if data[s.pos] < '1' || data[s.pos] > '5' {
		return violation(CouponInvalidSaveValueLength, s.pos, 1)
	}
	vli = int(data[s.pos] - '0')
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(CouponTruncatedSaveValue)
	}
	s.pos += vli

	// Primary purchase Requirement, VLI "1" to "5", then its single-digit
	// code and three-digit Family Code.
	if s.remaining() == 0 {
		return violation(CouponMissingFirstReqVLI, 0, len(data))
	}
	if data[s.pos] < '1' || data[s.pos] > '5' {
		return violation(CouponInvalidFirstReqLength, s.pos, 1)
	}
	vli = int(data[s.pos] - '0')
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(CouponTruncatedFirstReq)
	}
	s.pos += vli
	if s.remaining() == 0 {
		return violation(CouponMissingFirstReqCode, 0, len(data))
	}
	if data[s.pos] > '4' && data[s.pos] != '9' {
		return violation(CouponInvalidFirstReqCode, s.pos, 1)
	}
	s.pos++
	if s.remaining() < 3 {
		return s.tailViolation(CouponTruncatedFirstFamilyCode)
	}
	s.pos += 3

	// Optional field 1: additional purchase rules and second purchase.
	if s.remaining() > 0 && data[s.pos] == '1' {
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingAdditionalRulesCode, 0, len(data))
		}
		if data[s.pos] > '3' {
			return violation(CouponInvalidAdditionalRulesCode, s.pos, 1)
		}
		s.pos++
		if v := s.purchase(CouponMissingSecondReqVLI, CouponInvalidSecondReqLength,
			CouponTruncatedSecondReq, CouponMissingSecondReqCode,
			CouponInvalidSecondReqCode, CouponTruncatedSecondFamilyCode,
			CouponMissingSecondGCPVLI, CouponInvalidSecondGCPLength,
			CouponTruncatedSecondGCP); v != nil {
			return v
		}
	}

	// Optional field 2: third purchase.
	if s.remaining() > 0 && data[s.pos] == '2' {
		s.pos++
		if v := s.purchase(CouponMissingThirdReqVLI, CouponInvalidThirdReqLength,
			CouponTruncatedThirdReq, CouponMissingThirdReqCode,
			CouponInvalidThirdReqCode, CouponTruncatedThirdFamilyCode,
			CouponMissingThirdGCPVLI, CouponInvalidThirdGCPLength,
			CouponTruncatedThirdGCP); v != nil {
			return v
		}
	}

	// Optional field 3: expiration date in YYMMDD.
	var expiry string
	if s.remaining() > 0 && data[s.pos] == '3' {
		s.pos++
		if s.remaining() < 6 {
			return s.tailViolation(CouponExpirationTooShort)
		}
		expiry = data[s.pos : s.pos+6]
		if v := YYMMDD(expiry); v != nil {
			return violation(CouponInvalidExpiration, s.pos, 6)
		}
		s.pos += 6
	}

	// Optional field 4: start date in YYMMDD, not after the expiration.
	if s.remaining() > 0 && data[s.pos] == '4' {
		s.pos++
		if s.remaining() < 6 {
			return s.tailViolation(CouponStartDateTooShort)
		}
		start := data[s.pos : s.pos+6]
		if v := YYMMDD(start); v != nil {
			return violation(CouponInvalidStartDate, s.pos, 6)
		}
		if expiry != "" && start > expiry {
			return violation(CouponExpirationBeforeStart, s.pos-8, 14)
		}
		s.pos += 6
	}

	// Optional field 5: serial number, VLI meaning length VLI+6.
	if s.remaining() > 0 && data[s.pos] == '5' {
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingSerialNumberVLI, 0, len(data))
		}
		vli = int(data[s.pos]-'0') + 6
		s.pos++
		if s.remaining() < vli {
			return s.tailViolation(CouponTruncatedSerialNumber)
		}
		s.pos += vli
	}

	// Optional field 6: retailer GCP/GLN, VLI "1" to "7".
	if s.remaining() > 0 && data[s.pos] == '6' {
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingRetailerVLI, 0, len(data))
		}
		if data[s.pos] < '1' || data[s.pos] > '7' {
			return violation(CouponInvalidRetailerLength, s.pos, 1)
		}
		vli = int(data[s.pos]-'0') + 6
		s.pos++
		if s.remaining() < vli {
			return s.tailViolation(CouponTruncatedRetailer)
		}
		if v := GCPPos1(data[s.pos : s.pos+vli]); v != nil {
			return violation(v.Code, s.pos, vli)
		}
		s.pos += vli
	}

	// Optional field 9: miscellaneous flags.
	if s.remaining() > 0 && data[s.pos] == '9' {
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingSaveValueCode, 0, len(data))
		}
		if c := data[s.pos]; c != '0' && c != '1' && c != '2' && c != '5' && c != '6' {
			return violation(CouponInvalidSaveValueCode, s.pos, 1)
		}
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingSaveValueItem, 0, len(data))
		}
		if data[s.pos] > '2' {
			return violation(CouponInvalidSaveValueItem, s.pos, 1)
		}
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingStoreFlag, 0, len(data))
		}
		s.pos++
		if s.remaining() == 0 {
			return violation(CouponMissingDontMultiplyFlag, 0, len(data))
		}
		if data[s.pos] != '0' && data[s.pos] != '1' {
			return violation(CouponInvalidDontMultiplyFlag, s.pos, 1)
		}
		s.pos++
	}

	if s.remaining() > 0 {
		return violation(CouponExcessData, s.pos, s.remaining())
	}
	return nil
}

// purchase validates a secondary purchase block: Requirement VLI and value,
// Requirement Code, Family Code and GCP with VLI "9" meaning no GCP.
func (s *couponScanner) purchase(missingReqVLI, invalidReqLen, truncReq,
	missingReqCode, invalidReqCode, truncFamily,
	missingGCPVLI, invalidGCPLen, truncGCP Code) *Violation {

	data := s.data
	if s.remaining() == 0 {
		return violation(missingReqVLI, 0, len(data))
	}
	if data[s.pos] < '1' || data[s.pos] > '5' {
		return violation(invalidReqLen, s.pos, 1)
	}
	vli := int(data[s.pos] - '0')
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(truncReq)
	}
	s.pos += vli

	if s.remaining() == 0 {
		return violation(missingReqCode, 0, len(data))
	}
	if data[s.pos] > '4' && data[s.pos] != '9' {
		return violation(invalidReqCode, s.pos, 1)
	}
	s.pos++
	if s.remaining() < 3 {
		return s.tailViolation(truncFamily)
	}
	s.pos += 3

	if s.remaining() == 0 {
		return violation(missingGCPVLI, 0, len(data))
	}
	if data[s.pos] > '6' && data[s.pos] != '9' {
		return violation(invalidGCPLen, s.pos, 1)
	}
	vli = 0
	if data[s.pos] != '9' {
		vli = int(data[s.pos]-'0') + 6
	}
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(truncGCP)
	}
	if vli > 0 {
		if v := GCPPos1(data[s.pos : s.pos+vli]); v != nil {
			return violation(v.Code, s.pos, vli)
		}
		s.pos += vli
	}
	return nil
}

// CouponPosOffer ensures that the component conforms to the modernised North
// American positive offer file coupon format carried in AI (8112).
func CouponPosOffer(data string) *Violation {
	if v := CSetNumeric(data); v != nil {
		return v
	}

	s := &couponScanner{data: data}

	// Format Code "0" or "1".
	if s.remaining() == 0 {
		return violation(CouponMissingFormatCode, 0, len(data))
	}
	if data[s.pos] != '0' && data[s.pos] != '1' {
		return violation(CouponInvalidFormatCode, s.pos, 1)
	}
	s.pos++

	// Funder ID, VLI "0" to "6" meaning length VLI+6.
	if s.remaining() == 0 {
		return violation(CouponMissingFunderVLI, 0, len(data))
	}
	if data[s.pos] > '6' {
		return violation(CouponInvalidFunderLength, s.pos, 1)
	}
	vli := int(data[s.pos]-'0') + 6
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(CouponTruncatedFunder)
	}
	s.pos += vli

	// Six digit Offer Code.
	if s.remaining() < 6 {
		return s.tailViolation(CouponTruncatedOfferCode)
	}
	s.pos += 6

	// Serial Number, VLI meaning length VLI+6.
	if s.remaining() == 0 {
		return violation(CouponMissingSerialNumberVLI, 0, len(data))
	}
	vli = int(data[s.pos]-'0') + 6
	s.pos++
	if s.remaining() < vli {
		return s.tailViolation(CouponTruncatedSerialNumber)
	}
	s.pos += vli

	if s.remaining() > 0 {
		return violation(CouponExcessData, s.pos, s.remaining())
	}
	return nil
}
