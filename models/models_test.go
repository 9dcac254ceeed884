package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedTagCount(t *testing.T) {
	u := User{Tags: []string{"Here to Dance", "Cocktails", "Riding Solo"}}

	assert.Equal(t, 0, u.SharedTagCount(nil))
	assert.Equal(t, 1, u.SharedTagCount([]string{"Cocktails"}))
	assert.Equal(t, 2, u.SharedTagCount([]string{"Cocktails", "Here to Dance", "Wine"}))
	assert.Equal(t, 0, (User{}).SharedTagCount([]string{"Cocktails"}))
}

func TestInteractionIsComplete(t *testing.T) {
	assert.True(t, Interaction{Type: InteractionTypeQuestion, Content: "q", BoldMove: "b"}.IsComplete())
	assert.False(t, Interaction{Type: InteractionTypeQuestion, Content: "q"}.IsComplete())
	assert.False(t, Interaction{Content: "q", BoldMove: "b"}.IsComplete())
}

func TestSeedDataIntegrity(t *testing.T) {
	venues := map[int]bool{}
	for _, v := range SeedVenues() {
		assert.False(t, venues[v.ID], "duplicate venue id %d", v.ID)
		venues[v.ID] = true
	}

	seen := map[int]bool{}
	for _, u := range SeedUsers() {
		assert.False(t, seen[u.ID], "duplicate user id %d", u.ID)
		seen[u.ID] = true
		assert.True(t, venues[u.CurrentVenueID], "user %d references unknown venue", u.ID)
	}

	assert.NotEmpty(t, SeedCoupons())
}
