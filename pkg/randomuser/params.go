// Package randomuser implements the core of the server: the parameter
// object for the getUsers operation, the query builder that maps it onto
// the randomuser.me wire format, and the dispatcher that performs the
// single outbound fetch.
package randomuser

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PasswordSpec describes the password generation rules forwarded to the
// upstream API. Min and Max use zero as "not set", mirroring the
// truthiness checks the upstream contract was written against.
type PasswordSpec struct {
	Charset []string `json:"charset,omitempty" jsonschema:"description=Character classes to draw from" validate:"omitempty,dive,oneof=special upper lower number"`
	Min     int      `json:"min,omitempty" jsonschema:"description=Minimum password length"`
	Max     int      `json:"max,omitempty" jsonschema:"description=Maximum password length"`
}

// Pagination selects a page of a seeded result set. Its results and seed
// values override their top-level counterparts when both are given.
type Pagination struct {
	Page    *int   `json:"page,omitempty" jsonschema:"description=Page number to fetch (1-based)" validate:"omitempty,gte=1"`
	Results *int   `json:"results,omitempty" jsonschema:"description=Results per page (overrides the top-level results)"`
	Seed    string `json:"seed,omitempty" jsonschema:"description=Seed of the result set being paged (overrides the top-level seed)"`
}

// Params is the parameter object for one getUsers invocation. It is
// decoded and validated once, then treated as immutable: the query string
// derived from it is a pure function of its fields.
//
// The validate tags are the schema — every constraint on the operation's
// input lives here and nowhere else.
type Params struct {
	Results       *int          `json:"results,omitempty" jsonschema:"description=Number of users to fetch" validate:"omitempty,gt=0"`
	Gender        string        `json:"gender,omitempty" jsonschema:"enum=male,enum=female,description=Restrict results to one gender" validate:"omitempty,oneof=male female"`
	Seed          string        `json:"seed,omitempty" jsonschema:"description=Seed for reproducible result sets"`
	Nationalities []string      `json:"nationalities,omitempty" jsonschema:"description=Country codes to draw users from" validate:"omitempty,dive,oneof=AU BR CA CH DE DK ES FI FR GB IE IN IR MX NL NO NZ RS TR UA US"`
	Password      *PasswordSpec `json:"password,omitempty" jsonschema:"description=Password generation rules"`
	Pagination    *Pagination   `json:"pagination,omitempty" jsonschema:"description=Page selection within a seeded result set"`
	Inc           []string      `json:"inc,omitempty" jsonschema:"description=Only include these fields in each user" validate:"omitempty,dive,oneof=gender name location email login registered dob phone cell id picture nat"`
	Exc           []string      `json:"exc,omitempty" jsonschema:"description=Exclude these fields from each user" validate:"omitempty,dive,oneof=gender name location email login registered dob phone cell id picture nat"`
}

var validate = validator.New()

// ParseParams decodes the raw tool arguments into a Params and checks it
// against the schema. Any decode or constraint failure is a validation
// error; no network call may happen after one. Unknown argument keys are
// dropped and never forwarded upstream.
func ParseParams(args map[string]any) (Params, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return Params{}, fmt.Errorf("invalid arguments: %w", err)
	}

	var p Params
	if err := json.Unmarshal(raw, &p); err != nil {
		return Params{}, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := validate.Struct(&p); err != nil {
		return Params{}, fmt.Errorf("invalid arguments: %w", err)
	}

	return p, nil
}
