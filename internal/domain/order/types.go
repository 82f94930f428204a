package order

type Type string

const (
	TypeNormal      Type = "normal"
	TypeReservation Type = "reservation"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeNormal, TypeReservation:
		return true
	default:
		return false
	}
}

func (t Type) DisplayName() string {
	switch t {
	case TypeNormal:
		return "通常注文"
	case TypeReservation:
		return "予約注文"
	default:
		return ""
	}
}
