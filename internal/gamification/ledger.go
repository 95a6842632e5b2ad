package gamification

import (
	"fmt"
	"time"

	"github.com/project-codexa/backend/internal/models"
)

// Avatars available to learners; the first is unlocked by default, the rest
// come from the shop.
var Avatars = []string{"🎒", "🧠", "🧭", "🛡️", "⚙️", "🦉", "🐱", "🐶", "🐧", "🐉", "🦊", "🦄"}

// DefaultAvatar is assigned to every fresh profile.
var DefaultAvatar = Avatars[0]

type ItemType string

const (
	ItemAvatar  ItemType = "avatar"
	ItemCredits ItemType = "credits"
)

// ShopItem is one purchasable catalog entry, priced in coins.
type ShopItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Type     ItemType `json:"type"`
	Avatar   string   `json:"avatar,omitempty"`
	Quantity int      `json:"quantity,omitempty"`
}

var ShopItems = []ShopItem{
	{ID: "avatar_owl", Name: "Avatar: 🦉", Cost: 20, Type: ItemAvatar, Avatar: "🦉"},
	{ID: "avatar_dragon", Name: "Avatar: 🐉", Cost: 40, Type: ItemAvatar, Avatar: "🐉"},
	{ID: "credit_pack", Name: "Credit Pack (+3)", Cost: 15, Type: ItemCredits, Quantity: 3},
}

// FindShopItem looks an item up by id.
func FindShopItem(id string) (ShopItem, bool) {
	for _, item := range ShopItems {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}

// ApplyPurchase deducts the item's cost and applies its effect. Insufficient
// coins is a recoverable, user-visible rejection: no state is mutated.
func ApplyPurchase(item ShopItem, p *models.LearnerProfile) error {
	if p.Coins < item.Cost {
		return fmt.Errorf("not enough coins (need %d, have %d)", item.Cost, p.Coins)
	}
	p.Coins -= item.Cost
	switch item.Type {
	case ItemAvatar:
		p.UnlockedAvatars[item.Avatar] = true
	case ItemCredits:
		p.Credits += item.Quantity
	}
	return nil
}

// SelectAvatar switches the active avatar; locked avatars are rejected.
func SelectAvatar(p *models.LearnerProfile, avatar string) error {
	if !p.UnlockedAvatars[avatar] {
		return fmt.Errorf("avatar %s is locked", avatar)
	}
	p.Avatar = avatar
	return nil
}

// SpendCredit deducts one game credit. Zero credits is a recoverable
// rejection, not a fault.
func SpendCredit(p *models.LearnerProfile) error {
	if p.Credits <= 0 {
		return fmt.Errorf("not enough credits (have %d)", p.Credits)
	}
	p.Credits--
	return nil
}

// RefundCredit returns one game credit (win reward).
func RefundCredit(p *models.LearnerProfile) {
	p.Credits++
}

// TouchDailyStreak advances the consecutive-day counter once per session
// activation. A one-day gap extends the streak, a longer gap resets it to 1,
// and repeat activity on the same day is a no-op. LastActiveDate is always
// stamped to today afterwards.
func TouchDailyStreak(p *models.LearnerProfile, today time.Time) {
	today = today.UTC().Truncate(24 * time.Hour)
	if p.LastActiveDate == nil {
		p.DailyStreak = 1
	} else {
		switch diff := daysBetween(*p.LastActiveDate, today); {
		case diff == 1:
			p.DailyStreak++
		case diff > 1:
			p.DailyStreak = 1
		}
	}
	p.LastActiveDate = &today
}
