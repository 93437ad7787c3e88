package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", ":9000")
	assert.Equal(t, ":9000", GetEnvString("TEST_ENV_STRING", ":8080"))
	assert.Equal(t, ":8080", GetEnvString("TEST_ENV_STRING_UNSET", ":8080"))
}

func TestGetEnvInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("TEST_ENV_INT", "42")
		assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 7))
	})

	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT_UNSET", 7))
	})

	t.Run("unparseable uses default", func(t *testing.T) {
		t.Setenv("TEST_ENV_INT", "many")
		assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT", 7))
	})
}

func TestGetEnvStringList(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		t.Setenv("TEST_ENV_LIST", "https://a.example.com, https://b.example.com ,")
		assert.Equal(t,
			[]string{"https://a.example.com", "https://b.example.com"},
			GetEnvStringList("TEST_ENV_LIST", nil))
	})

	t.Run("unset uses default", func(t *testing.T) {
		assert.Equal(t, []string{"x"}, GetEnvStringList("TEST_ENV_LIST_UNSET", []string{"x"}))
	})

	t.Run("only separators uses default", func(t *testing.T) {
		t.Setenv("TEST_ENV_LIST", " , , ")
		assert.Nil(t, GetEnvStringList("TEST_ENV_LIST", nil))
	})
}
