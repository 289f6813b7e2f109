package jobparse_test

import (
	"testing"

	"github.com/fwojciec/jobparse"
	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", jobparse.CleanText(""))
	})

	t.Run("collapses whitespace runs including newlines", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("  Senior   Engineer\n\n\tBerlin \r\n Remote  ")

		assert.Equal(t, "Senior Engineer Berlin Remote", got)
	})

	t.Run("collapses unicode and vertical whitespace", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Senior\u00a0\u00a0 Engineer\v\vBerlin\u2003Remote")

		assert.Equal(t, "Senior Engineer Berlin Remote", got)
	})

	t.Run("removes boilerplate separated by non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Cookie\u00a0Policy Hello\u00a0World")

		assert.Equal(t, "Hello World", got)
	})

	t.Run("whitespace only input becomes empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", jobparse.CleanText(" \n\t\n "))
	})

	t.Run("removes boilerplate phrases", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Apply now. Cookie Policy Privacy Policy Terms of Service Accept all cookies All rights reserved")

		assert.Equal(t, "Apply now.", got)
	})

	t.Run("removes email addresses", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Send your CV to jobs.team+hr@example.org before Friday")

		assert.Equal(t, "Send your CV to before Friday", got)
		assert.NotContains(t, got, "@")
	})

	t.Run("removes copyright notice with year", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Footer Copyright © 2024 Example Org")

		assert.Equal(t, "Footer Example Org", got)
	})

	t.Run("keeps copyright without year", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Copyright © Example")

		assert.Equal(t, "Copyright © Example", got)
	})

	t.Run("keeps surrounding content", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Cookie Policy Hello World")

		assert.NotContains(t, got, "Cookie Policy")
		assert.Contains(t, got, "Hello World")
	})

	t.Run("removes matches formed by an earlier removal", func(t *testing.T) {
		t.Parallel()

		got := jobparse.CleanText("Cookie PolCookie Policyicy Hello")

		assert.Equal(t, "Hello", got)
	})
}

func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text",
		"  lots \n\n of   space ",
		"a Cookie Policy b",
		"Cookie Cookie Policy Policy",
		"Cookie PolCookie Policyicy",
		"mail me: a@b.co, c@d.org!",
		"Copyright © 2023 Copyright © 2024 All rights reserved.",
		"Privacy PolicyPrivacy Policy\n\nTerms of Service",
		"Senior\u00a0\u00a0 Engineer\v\vBerlin",
		"Cookie\u00a0Policy\u2028Terms\u00a0of Service",
		"Job description\n\n- Write Go\n- Review code\n\nAccept all cookies",
	}

	for _, in := range inputs {
		once := jobparse.CleanText(in)
		twice := jobparse.CleanText(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}
