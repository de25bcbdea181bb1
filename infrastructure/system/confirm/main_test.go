package confirm

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		prompts  int
	}{
		{name: "空入力はyes", input: "\n", expected: true, prompts: 1},
		{name: "y", input: "y\n", expected: true, prompts: 1},
		{name: "YES", input: " YES \n", expected: true, prompts: 1},
		{name: "n", input: "n\n", expected: false, prompts: 1},
		{name: "改行なしのno", input: "no", expected: false, prompts: 1},
		{name: "不正な入力は聞き直すこと", input: "maybe\nn\n", expected: false, prompts: 2},
		{name: "入力が閉じられた場合はno", input: "", expected: false, prompts: 1},
		{name: "不正な入力の後に入力が閉じられた場合はno", input: "maybe", expected: false, prompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			actual, err := NewPromptConfirm(strings.NewReader(tt.input), &out).Confirm("Proceed?")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
			assert.True(t, strings.HasPrefix(out.String(), "Proceed? [Y/n] "))
			assert.Equal(t, tt.prompts-1, strings.Count(out.String(), "Please answer y or n"))
		})
	}
}
