package booking

// Kind discriminates the two booking record families sharing one shape:
// studio-time bookings and service bookings.
type Kind string

const (
	KindStudio  Kind = "studio"
	KindService Kind = "service"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStudio, KindService:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	default:
		return false
	}
}
