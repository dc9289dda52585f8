package credit

type Kind string

const (
	KindPurchase    Kind = "purchase"
	KindUsageCharge Kind = "usage_charge"
	KindAdjustment  Kind = "adjustment"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPurchase, KindUsageCharge, KindAdjustment:
		return true
	default:
		return false
	}
}
