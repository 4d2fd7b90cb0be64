package xsetwacom

import (
	"github.com/korvala/padmap/internal/mapping"
)

// Get queries the current value of one setting on the device referenced by
// id and returns it exactly as reported, untrimmed. The query never mutates
// device state.
func (c *Client) Get(id, property, parameter string) (string, error) {
	return c.runner.Run("get", id, property, parameter)
}

// Set applies one mapping rule to the device referenced by id. The returned
// error reflects only whether the command could be issued; the utility's
// exit status is not a reliable success signal, so callers that need a
// guarantee should re-read the setting afterwards.
func (c *Client) Set(id string, rule mapping.Rule) error {
	_, err := c.runner.Run("set", id, rule.Property, rule.Parameter, rule.Value)
	return err
}
