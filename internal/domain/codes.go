package domain

// Text encodings follow the CIM codes market participants submit.

func (t ChargeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ChargeType) UnmarshalText(text []byte) error {
	*t = ChargeTypeUnknown
	for k, v := range chargeTypeNames {
		if v == string(text) {
			*t = k
		}
	}
	return nil
}

func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Resolution) UnmarshalText(text []byte) error {
	*r = ResolutionUnknown
	for k, v := range resolutionNames {
		if v == string(text) {
			*r = k
		}
	}
	return nil
}

var vatClassificationNames = map[VatClassification]string{
	VatClassificationUnknown: "Unknown",
	VatClassificationNoVat:   "D01",
	VatClassificationVat25:   "D02",
}

func (v VatClassification) String() string {
	if s, ok := vatClassificationNames[v]; ok {
		return s
	}
	return "Unknown"
}

func (v VatClassification) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *VatClassification) UnmarshalText(text []byte) error {
	*v = VatClassificationUnknown
	for k, s := range vatClassificationNames {
		if s == string(text) {
			*v = k
		}
	}
	return nil
}
