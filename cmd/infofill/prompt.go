package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jonathan/infofill/internal/types"
)

// errAborted is returned when the user interrupts an interactive prompt.
var errAborted = errors.New("aborted")

// prompter asks for one line of input. It lets edit flows run without a
// terminal in tests.
type prompter interface {
	Input(message, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}

// basicLabels are the prompt labels for the recognized basic keys.
var basicLabels = map[string]string{
	"name":             "姓名 (name)",
	"gender":           "性别 (gender)",
	"idNumber":         "身份证号 (idNumber)",
	"phone":            "联系电话 (phone)",
	"email":            "邮箱 (email)",
	"address":          "通讯地址 (address)",
	"householdAddress": "户籍地址 (householdAddress)",
	"ethnicity":        "民族 (ethnicity)",
	"birthDate":        "出生日期 (birthDate)",
	"idType":           "证件类型 (idType)",
}

// promptBasic walks every basic key, recognized then custom, and returns only
// the values the user changed.
func promptBasic(p prompter, current types.Basic) (map[string]string, error) {
	keys := append(types.BasicKeys(), current.ExtraKeys()...)
	changed := make(map[string]string)
	for _, key := range keys {
		label, ok := basicLabels[key]
		if !ok {
			label = key
		}
		old := current.Get(key)
		value, err := p.Input(label, old)
		if err != nil {
			return nil, err
		}
		if value != old {
			changed[key] = value
		}
	}
	return changed, nil
}
