package entity

import "errors"

// PaymentPlan is how the buyer settles: PayNow (with a detail) or OnCredit.
type PaymentPlan interface {
	Method() PaymentMethod
	isPaymentPlan()
}

type PayNow struct {
	Detail PaymentDetail
}

func (PayNow) Method() PaymentMethod { return MethodPayment }
func (PayNow) isPaymentPlan()        {}

type OnCredit struct{}

func (OnCredit) Method() PaymentMethod { return MethodCredit }
func (OnCredit) isPaymentPlan()        {}

var (
	ErrPaymentMethodRequired = errors.New("Payment method (Payment or Credit) is required.")
	ErrPaymentMethodInvalid  = errors.New("Payment method must be Payment or Credit.")
	ErrPaymentDetailRequired = errors.New("Payment detail (e.g., Cash, Card) is required when method is Payment.")
	ErrPaymentDetailInvalid  = errors.New("Payment detail must be Cash, Card or Bank Transfer.")
)

// ParsePaymentPlan builds a plan from request fields. A detail sent with
// Credit is ignored.
func ParsePaymentPlan(method, detail string) (PaymentPlan, error) {
	switch PaymentMethod(method) {
	case "":
		return nil, ErrPaymentMethodRequired
	case MethodPayment:
		if detail == "" {
			return nil, ErrPaymentDetailRequired
		}
		d := PaymentDetail(detail)
		if !d.Valid() {
			return nil, ErrPaymentDetailInvalid
		}
		return PayNow{Detail: d}, nil
	case MethodCredit:
		return OnCredit{}, nil
	default:
		return nil, ErrPaymentMethodInvalid
	}
}

// Payment is the persisted shape of a plan plus its settlement status.
type Payment struct {
	Method PaymentMethod  `gorm:"type:varchar(16);not null" json:"method"`
	Detail *PaymentDetail `gorm:"type:varchar(32)" json:"detail,omitempty"`
	Status PaymentStatus  `gorm:"type:varchar(16);not null;default:Unpaid" json:"status"`
}

func NewPayment(plan PaymentPlan) Payment {
	p := Payment{Method: plan.Method(), Status: PaymentUnpaid}
	if pn, ok := plan.(PayNow); ok {
		d := pn.Detail
		p.Detail = &d
	}
	return p
}

// Plan recovers the sum type from stored columns.
func (p Payment) Plan() PaymentPlan {
	if p.Method == MethodPayment && p.Detail != nil {
		return PayNow{Detail: *p.Detail}
	}
	return OnCredit{}
}
