package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisteredDevicesIncludeFramebufferAndPrinter(t *testing.T) {
	names := map[string]bool{}
	for _, d := range Devices() {
		names[d.Name()] = true
	}

	assert.True(t, names["framebuffer"], "framebuffer not registered")
	assert.True(t, names["printer"], "printer not registered")
}

func TestRegisterDeviceRejectsDuplicateName(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r, "RegisterDevice did not panic on a duplicate name")
	}()
	RegisterDevice("printer", NewPrinter())
}
