package agent_tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	checkAvailability "github.com/m04kA/table-buddy/internal/usecase/check_availability"
	createReservation "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
	findNextSlot "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
)

const (
	ToolCheckAvailability      = "checkAvailability"
	ToolCreateReservation      = "createReservation"
	ToolCheckNextAvailableSlot = "checkNextAvailableSlot"
)

// PeopleCount число гостей. Агент присылает его как числом, так и строкой.
type PeopleCount int

// UnmarshalJSON implements json.Unmarshaler
func (p *PeopleCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*p = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("no_of_people must be an integer, got %s", data)
	}
	*p = PeopleCount(n)
	return nil
}

// ToolArguments именованные аргументы вызова инструмента
type ToolArguments struct {
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	NoOfPeople      PeopleCount `json:"no_of_people"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	Occasion        *string     `json:"occasion,omitempty"`
	SpecialRequests *string     `json:"special_requests,omitempty"`
}

// ToolResponse ответ инструмента: фраза для агента
type ToolResponse struct {
	Result string `json:"result"`
}

func decodeArguments(body []byte) (*ToolArguments, error) {
	var args ToolArguments
	if len(bytes.TrimSpace(body)) == 0 {
		return &args, nil
	}
	if err := json.Unmarshal(body, &args); err != nil {
		return nil, err
	}
	return &args, nil
}

func (a *ToolArguments) toCheckRequest() *checkAvailability.Request {
	return &checkAvailability.Request{Date: a.Date, Time: a.Time, PartySize: int(a.NoOfPeople)}
}

func (a *ToolArguments) toNextSlotRequest() *findNextSlot.Request {
	return &findNextSlot.Request{Date: a.Date, Time: a.Time, PartySize: int(a.NoOfPeople)}
}

func (a *ToolArguments) toCreateRequest() *createReservation.Request {
	return &createReservation.Request{
		Name:            a.Name,
		Phone:           a.Phone,
		Date:            a.Date,
		Time:            a.Time,
		PartySize:       int(a.NoOfPeople),
		Occasion:        a.Occasion,
		SpecialRequests: a.SpecialRequests,
	}
}
