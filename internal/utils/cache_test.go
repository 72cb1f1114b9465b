package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageCacheTTL(t *testing.T) {
	c := GetCache()

	c.Set("k1", "v1", time.Minute)
	assert.Equal(t, "v1", c.Get("k1"))

	c.Set("k2", "v2", -time.Second)
	assert.Nil(t, c.Get("k2"), "expired entries read as misses")

	assert.Nil(t, c.Get("absent"))
}

func TestPageCacheDelete(t *testing.T) {
	c := GetCache()

	c.Set("k3", 42, time.Minute)
	c.Delete("k3")
	assert.Nil(t, c.Get("k3"))
}

func TestPageCacheDeletePrefix(t *testing.T) {
	c := GetCache()

	c.Set("list:page:1", "p1", time.Minute)
	c.Set("list:page:2", "p2", time.Minute)
	c.Set("other", "kept", time.Minute)

	c.DeletePrefix("list:page:")
	assert.Nil(t, c.Get("list:page:1"))
	assert.Nil(t, c.Get("list:page:2"))
	assert.Equal(t, "kept", c.Get("other"))
}
