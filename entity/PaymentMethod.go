package entity

type PaymentMethod string

const (
	MethodPayment PaymentMethod = "Payment"
	MethodCredit  PaymentMethod = "Credit"
)

type PaymentDetail string

const (
	DetailCash         PaymentDetail = "Cash"
	DetailCard         PaymentDetail = "Card"
	DetailBankTransfer PaymentDetail = "Bank Transfer"
)

func (d PaymentDetail) Valid() bool {
	return d == DetailCash || d == DetailCard || d == DetailBankTransfer
}
