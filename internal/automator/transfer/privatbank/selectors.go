package privatbank

import "maps"

const (
	SendMoneyURL          = "https://sendmoney.privatbank.ua/ua/"
	ConfirmationURLSuffix = "step2"

	// The step 1 send button carries a class ending with "disabledbutton"
	// until client-side validation of every field passes.
	disabledButtonSuffix  = "disabledbutton"
	activeSendButtonClass = "content__buttom send_money_step_1"
)

// Field is the symbolic name of a wizard element.
type Field string

const (
	// Main page
	FieldSenderCardNumber   Field = "sender_card_number"
	FieldSenderExpiresMonth Field = "sender_expires_month"
	FieldSenderExpiresYear  Field = "sender_expires_year"
	FieldSenderCvv          Field = "sender_cvv"
	FieldReceiverCardNumber Field = "receiver_card_number"
	FieldAmount             Field = "amount"
	FieldSendButton         Field = "send_button"

	// Confirmation page
	FieldPhoneNumber Field = "phone_number"
)

// LocatorSet maps fields of one wizard step to their XPath.
type LocatorSet map[Field]string

// XPaths of the live site, kept verbatim.
var (
	mainPageLocators = LocatorSet{
		FieldSenderCardNumber:   "/html/body/div[2]/div[3]/div/div[1]/div[1]/div/div[1]/div[1]/form/input",
		FieldSenderExpiresMonth: "/html/body/div[2]/div[3]/div/div[1]/div[1]/div/div[1]/div[2]/select[1]",
		FieldSenderExpiresYear:  "/html/body/div[2]/div[3]/div/div[1]/div[1]/div/div[1]/div[2]/select[2]",
		FieldSenderCvv:          "/html/body/div[2]/div[3]/div/div[1]/div[1]/div/div[2]/div/form/input",
		FieldReceiverCardNumber: `//*[@id="receiver_card"]/input`,
		FieldAmount:             `//*[@id="amount"]`,
		FieldSendButton:         "/html/body/div[2]/div[3]/div/div[1]/div[9]",
	}

	confirmationPageLocators = LocatorSet{
		FieldPhoneNumber: `//*[@id="step2Phone"]`,
		FieldSendButton:  "/html/body/div[2]/div[3]/div/div[15]/div",
	}
)

// MainPageLocators returns a copy of the step 1 locators.
func MainPageLocators() LocatorSet {
	return maps.Clone(mainPageLocators)
}

// ConfirmationPageLocators returns a copy of the step 2 locators.
func ConfirmationPageLocators() LocatorSet {
	return maps.Clone(confirmationPageLocators)
}
