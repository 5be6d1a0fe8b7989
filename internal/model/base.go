package model

import (
	"encoding/json"
	"strconv"
)

// ID is the canonical entity identifier. Roster rows carry numeric ids while
// stored appointments carry string ids, so the decoder accepts both forms and
// normalizes to the string representation once, at the boundary. After that,
// plain == comparison is safe everywhere.
type ID string

// IDFromInt converts a numeric roster id to the canonical form.
func IDFromInt(n int) ID {
	return ID(strconv.Itoa(n))
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
