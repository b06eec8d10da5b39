package testdata

import "time"

// Test cards understood by the fake acquiring bank. The last digit decides
// the outcome: odd authorizes, even declines, zero makes the bank unavailable.
type TestCard struct {
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var nextYear = time.Now().Year() + 1

var (
	AuthorizedCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "123",
		ExpiryMonth: 4,
		ExpiryYear:  nextYear,
		Description: "Happy path card",
	}

	DeclinedCard = TestCard{
		CardNumber:  "2222405343248112",
		CVV:         "456",
		ExpiryMonth: 1,
		ExpiryYear:  nextYear,
		Description: "Card the bank refuses",
	}

	BankUnavailableCard = TestCard{
		CardNumber:  "2222405343248870",
		CVV:         "789",
		ExpiryMonth: 12,
		ExpiryYear:  nextYear,
		Description: "Bank answers 503",
	}

	ExpiredCard = TestCard{
		CardNumber:  "5105105105105101",
		CVV:         "321",
		ExpiryMonth: 3,
		ExpiryYear:  2020,
		Description: "Expired card",
	}
)
