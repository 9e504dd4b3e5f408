package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Snowflake is a platform object identifier. The wire format is a decimal
// string, although plain JSON numbers are accepted when decoding.
type Snowflake uint64

// ParseSnowflake parses a decimal identifier.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// MarshalJSON implements json.Marshaler.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	v, err := ParseSnowflake(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Guild is the partial guild metadata returned by GET /guilds/{id}.
type Guild struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	OwnerID     Snowflake `json:"owner_id,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CommandType mirrors the platform's application command types.
type CommandType int

const (
	ChatInput CommandType = 1
	User      CommandType = 2
	Message   CommandType = 3
)

// CommandOption describes one argument of a chat input command.
type CommandOption struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}

// CommandData is the payload used to create or edit an application command.
type CommandData struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        CommandType     `json:"type,omitempty"`
	Options     []CommandOption `json:"options,omitempty"`
}

// Command is an application command as stored by the platform.
type Command struct {
	ID            Snowflake       `json:"id"`
	ApplicationID Snowflake       `json:"application_id"`
	GuildID       Snowflake       `json:"guild_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Type          CommandType     `json:"type,omitempty"`
	Options       []CommandOption `json:"options,omitempty"`
}

// APIError is returned for any non-2xx REST response.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("discord api: status %d", e.Status)
	}
	return fmt.Sprintf("discord api: status %d: %s (code %d)", e.Status, e.Message, e.Code)
}
