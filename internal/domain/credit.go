package domain

// SubscriptionCredit остаток кредитов подписки пользователя
type SubscriptionCredit struct {
	SharetribeUserID string
	CreditsRemaining int
	PlanLabel        string
}

// HasCredits проверяет, что у пользователя остались кредиты
func (c *SubscriptionCredit) HasCredits() bool {
	return c.CreditsRemaining > 0
}
