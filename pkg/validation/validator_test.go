package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsSyntaxError(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte(`{"username":`), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsTypeError(t *testing.T) {
	var dst struct {
		UserID string `json:"userId"`
	}
	err := json.Unmarshal([]byte(`{"userId": 42}`), &dst)
	details := ToDetails(err)
	assert.Contains(t, details["userId"], "wrong type")
}

func TestToDetailsFallback(t *testing.T) {
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
