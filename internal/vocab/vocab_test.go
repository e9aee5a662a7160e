package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages_FallsBackToEnUS(t *testing.T) {
	assert.Equal(t, Messages("en-US"), Messages("de-DE"))
}

func TestMessages_KnownLocale(t *testing.T) {
	set := Messages("en-US")
	assert.NotEmpty(t, set.Welcome)
	assert.NotEmpty(t, set.Stop)
	assert.NotEmpty(t, set.UpsellMessage)
}
