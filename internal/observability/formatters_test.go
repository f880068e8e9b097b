package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/infofill/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := types.NewProfile()
	profile.Basic.Set("name", "张三")
	profile.Basic.Set("wechat", "zs_1990")
	profile.Experiences = []types.Experience{{ID: "e1", Name: "X"}}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "PROFILE")
	assert.Contains(t, output, "张三")
	assert.Contains(t, output, "wechat")
	assert.Contains(t, output, "Experiences: 1")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExperiences(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperiences([]types.Experience{
		{ID: "e1", Type: types.ExperienceEducation, Name: "University X", Role: "CS", Title: "BSc", StartDate: "2010-09", EndDate: "2014-06"},
		{ID: "e2", Type: types.ExperienceWork, Name: "Company Z", StartDate: "2014-07"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCES (2)")
	assert.Contains(t, output, "e1  [education]")
	assert.Contains(t, output, "2010-09 - 2014-06  University X")
	assert.Contains(t, output, "CS BSc")
	assert.Contains(t, output, "Company Z")
}

func TestPrintFamily_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFamily(nil)
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintTemplates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplates([]types.Template{
		{ID: "t1", Name: "Intro", Type: types.TemplateText, Content: "line1\nline2\nline3\nline4"},
		{ID: "t2", Name: "Data", Type: types.TemplateJSON, Content: "{}"},
	})
	output := buf.String()

	assert.Contains(t, output, "TEMPLATES (2)")
	assert.Contains(t, output, "type: Text")
	assert.Contains(t, output, "> line1")
	assert.NotContains(t, output, "> line3")
	assert.Contains(t, output, "... and 2 more lines")
	assert.Contains(t, output, "type: JSON")
}

func TestPrintGenerationSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGenerationSummary([]GenerationResult{
		{TemplateID: "default-1", Path: "out/default-1.txt"},
		{TemplateID: "broken", Err: errors.New("parse error")},
	})
	output := buf.String()

	assert.Contains(t, output, "WITH 1 FAILURES")
	assert.Contains(t, output, "Rendered 1/2 templates")
	assert.Contains(t, output, "✓ default-1")
	assert.Contains(t, output, "✗ broken")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFamily([]types.Family{{
		ID:       "f1",
		Relation: "父亲",
		Name:     "张大",
		Company:  "一家名字非常非常非常非常非常非常非常非常非常非常非常非常长的公司",
	}})
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.Equal(t, boxWidth, cellWidth.StringWidth(line), line)
	}
}

func TestTruncate_DisplayWidth(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "张三...", truncate("张三李四王五", 7))
	assert.Equal(t, 7, cellWidth.StringWidth(pad("张三", 7)))
	assert.Equal(t, "ab   ", pad("ab", 5))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", true)
	assert.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("template_id", "t1").Msg("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"template_id":"t1"`)

	_, err = NewLogger(&buf, "loud", true)
	assert.Error(t, err)
}
