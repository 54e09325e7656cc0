// Package config loads glfwgo event loop and window settings from a profile
// file using Viper.
//
// A profile has an event_loop section and any number of named windows:
//
//	[event_loop]
//	platform = "x11"
//	joystick_hat_buttons = false
//
//	[windows.main]
//	resizable = true
//	client_api = "opengl"
//	opengl_profile = "core"
//	context_version_major = 4
//	context_version_minor = 1
//
// Enum values are written by name. Event loop keys can be overridden from
// the environment with the GLFWGO_ prefix, e.g. GLFWGO_EVENT_LOOP_PLATFORM.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/obinnaokechukwu/glfwgo"
)

// EnvPrefix is prepended to environment overrides.
const EnvPrefix = "GLFWGO"

// Profile is a decoded profile file.
type Profile struct {
	EventLoop glfwgo.EventLoopConfig         `mapstructure:"event_loop"`
	Windows   map[string]glfwgo.WindowConfig `mapstructure:"windows"`

	// File is the path the profile was read from, empty if none was found.
	File string `mapstructure:"-"`
}

// Window returns the named window section. Names are case-insensitive.
func (p *Profile) Window(name string) (glfwgo.WindowConfig, bool) {
	cfg, ok := p.Windows[strings.ToLower(name)]
	return cfg, ok
}

// SearchPaths returns the directories searched for glfwgo.{toml,yaml,json}
// when Load is given no explicit path.
func SearchPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "glfwgo"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "glfwgo"))
	}
	return append(paths, ".")
}

// Load reads a profile. With an empty path the SearchPaths are tried and a
// missing file yields an empty profile; an explicit path must exist.
func Load(path string) (*Profile, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("glfwgo")
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEventLoopEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %s: %w", describe(v, path), err)
		}
	}

	p := &Profile{}
	if err := v.Unmarshal(p, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", describe(v, path), err)
	}
	p.File = v.ConfigFileUsed()
	return p, nil
}

// decodeHook turns enum names into their typed values. Profiles carry no
// list-valued keys, so no other conversion is needed.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.TextUnmarshallerHookFunc()
}

// bindEventLoopEnv registers every event_loop key so environment overrides
// apply even when the file leaves the key out.
func bindEventLoopEnv(v *viper.Viper) error {
	t := reflect.TypeOf(glfwgo.EventLoopConfig{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		if err := v.BindEnv("event_loop." + tag); err != nil {
			return fmt.Errorf("config: binding %s: %w", tag, err)
		}
	}
	return nil
}

func describe(v *viper.Viper, path string) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	if path != "" {
		return path
	}
	return "profile"
}
