package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostdepth/modberg"
	"frostdepth/model"
)

func TestHubCompute(t *testing.T) {
	h := NewHub(nil, nil, modberg.LoadDefaults(""))
	msg := h.compute(validBody)
	require.Equal(t, model.MsgResult, msg.Type)

	var res modberg.Result
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &res))
	assert.Equal(t, 0.93, res.Lambda)
}

func TestHubComputeBadPayload(t *testing.T) {
	h := NewHub(nil, nil, modberg.LoadDefaults(""))
	msg := h.compute(`{"conductivity": "high"}`)
	assert.Equal(t, model.MsgError, msg.Type)
}

func TestHubDefaults(t *testing.T) {
	h := NewHub(nil, nil, modberg.LoadDefaults(""))
	msg := h.sendDefaults()
	require.Equal(t, model.MsgDefaultsData, msg.Type)

	var d modberg.Defaults
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &d))
	assert.Equal(t, 0.75, d.NFactor)
}
