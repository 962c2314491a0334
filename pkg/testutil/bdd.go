// Package testutil carries shared test scaffolding. The Given/When/Then
// helpers label the stages of an onboarding journey in subtest names so a
// failure points at the stage that broke.
package testutil

import "testing"

func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	stage(t, "Given", desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	stage(t, "When", desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	stage(t, "Then", desc, fn)
}

func stage(t *testing.T, prefix, desc string, fn func(t *testing.T)) {
	t.Helper()
	if !t.Run(prefix+" "+desc, fn) {
		t.Fatalf("%s %s: stage failed, aborting journey", prefix, desc)
	}
}
