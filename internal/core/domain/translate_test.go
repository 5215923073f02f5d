package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rivebuild/internal/core/domain"
)

func TestTranslator_Platform(t *testing.T) {
	tr := domain.NewTranslator(domain.DefaultTables())

	tests := []struct {
		in   domain.Platform
		want string
	}{
		{domain.PlatformMacOS, "macos"},
		{domain.PlatformLinux, "linux"},
		{domain.PlatformWindows, "windows"},
		{domain.PlatformIOS, "ios"},
		{domain.PlatformIOSSimulator, "ios_sim"},
		{domain.PlatformAndroid, "android"},
		{domain.PlatformAuto, ""},
		{domain.Platform("haiku"), ""},
		{domain.Platform("macos"), ""},
	}

	for _, tt := range tests {
		t.Run("platform_"+string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Platform(tt.in))
		})
	}
}

func TestTranslator_Target(t *testing.T) {
	tr := domain.NewTranslator(domain.DefaultTables())

	tests := []struct {
		in   domain.Target
		want string
	}{
		{domain.TargetDebug, "template_debug"},
		{domain.TargetRelease, "template_release"},
		{domain.TargetClean, "template_debug"},
		{domain.Target(""), "template_debug"},
		{domain.Target("profile"), "template_debug"},
	}

	for _, tt := range tests {
		t.Run("target_"+string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Target(tt.in))
		})
	}
}

func TestTranslator_EveryPlatformHasTranslation(t *testing.T) {
	tr := domain.NewTranslator(domain.DefaultTables())
	for _, p := range domain.Platforms() {
		assert.NotEmpty(t, tr.Platform(p), "platform %s", p)
	}
}

func TestNewTranslator_CopiesTables(t *testing.T) {
	tables := domain.DefaultTables()
	tr := domain.NewTranslator(tables)

	tables.Platforms[domain.PlatformMacOS] = "darwin"
	tables.Targets[domain.TargetRelease] = "editor"

	assert.Equal(t, "macos", tr.Platform(domain.PlatformMacOS))
	assert.Equal(t, "template_release", tr.Target(domain.TargetRelease))
	assert.Equal(t, "macos", domain.DefaultTables().Platforms[domain.PlatformMacOS])
}
