package payment

import (
	"fmt"
	"strings"

	"hotelpos/internal/pkg/errs"
)

// Method is how the guest settled.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	Credit
	Debit
	RoomCharge
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		Cash:       "cash",
		Credit:     "credit",
		Debit:      "debit",
		RoomCharge: "room-charge",
	}
}

func AllMethods() []Method {
	return []Method{Cash, Credit, Debit, RoomCharge}
}

func ParseMethod(s string) (Method, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for m, name := range getMethodStrings() {
		if name == needle {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%q is not a valid payment method", s))
}

func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Status is the processing state of a payment.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Completed
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
		Failed:    "failed",
	}
}

func AllStatuses() []Status {
	return []Status{Pending, Completed, Failed}
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if name == needle {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%q is not a valid payment status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
