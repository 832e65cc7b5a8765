package bootstrap

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRequiredExtensions(t *testing.T) {
	window := &fakeWindow{extensions: []string{"VK_KHR_surface", "VK_KHR_win32_surface"}}

	cases := []struct {
		diagnostics bool
		want        []string
	}{
		{false, []string{"VK_KHR_surface", "VK_KHR_win32_surface"}},
		{true, []string{"VK_KHR_surface", "VK_KHR_win32_surface", ExtensionDebugUtils}},
	}
	for _, c := range cases {
		have := RequiredExtensions(window, c.diagnostics)
		if !reflect.DeepEqual(have, c.want) {
			t.Errorf("RequiredExtensions(%t)\nhave %v\nwant %v", c.diagnostics, have, c.want)
		}
	}
}

func TestRequiredExtensionsKeepsDuplicates(t *testing.T) {
	window := &fakeWindow{extensions: []string{ExtensionDebugUtils}}

	have := RequiredExtensions(window, true)
	want := []string{ExtensionDebugUtils, ExtensionDebugUtils}
	if !reflect.DeepEqual(have, want) {
		t.Fatalf("RequiredExtensions\nhave %v\nwant %v", have, want)
	}
}

func TestRequiredExtensionsDoesNotAliasWindowList(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "VK_KHR_surface"
	window := &fakeWindow{extensions: base}

	_ = RequiredExtensions(window, true)
	if have := base[:2][1]; have != "" {
		t.Fatalf("window extension list was written to: %q", have)
	}
}

func TestHasAllLayers(t *testing.T) {
	available := toSet([]string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_LUNARG_monitor"})

	cases := []struct {
		requested []string
		want      bool
	}{
		{nil, true},
		{[]string{"VK_LAYER_KHRONOS_validation"}, true},
		{[]string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_LUNARG_monitor"}, true},
		{[]string{"VK_LAYER_KHRONOS_VALIDATION"}, false},
		{[]string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_NV_optimus"}, false},
	}
	for _, c := range cases {
		if have := HasAllLayers(available, c.requested); have != c.want {
			t.Errorf("HasAllLayers(%v)\nhave %t\nwant %t", c.requested, have, c.want)
		}
	}
}

func TestAvailableLayersQueryFailure(t *testing.T) {
	host := &fakeHost{layersErr: errDriver}

	layers := AvailableLayers(host, discardLogger())
	if layers == nil || len(layers) != 0 {
		t.Fatalf("AvailableLayers: have %v, want empty set", layers)
	}
}

func TestCheckLayers(t *testing.T) {
	host := &fakeHost{layers: []string{ValidationLayerKhronos}}

	if err := CheckLayers(host, []string{ValidationLayerKhronos}, discardLogger()); err != nil {
		t.Fatalf("CheckLayers: unexpected error %v", err)
	}

	err := CheckLayers(host, []string{"VK_LAYER_NV_optimus"}, discardLogger())
	if !errors.Is(err, ErrValidationLayersUnavailable) {
		t.Fatalf("CheckLayers: have %v, want %v", err, ErrValidationLayersUnavailable)
	}
	if hints := errors.GetAllHints(err); len(hints) == 0 {
		t.Error("CheckLayers: missing SDK install hint")
	}
}

func TestCheckExtensions(t *testing.T) {
	host := &fakeHost{extensions: []string{"VK_KHR_surface", ExtensionDebugUtils}}

	available, err := CheckExtensions(host, []string{"VK_KHR_surface"})
	if err != nil {
		t.Fatalf("CheckExtensions: unexpected error %v", err)
	}
	if _, ok := available[ExtensionDebugUtils]; !ok {
		t.Errorf("CheckExtensions: available set lacks %s", ExtensionDebugUtils)
	}

	_, err = CheckExtensions(host, []string{"VK_KHR_surface", "VK_KHR_wayland_surface"})
	if !errors.Is(err, ErrExtensionsUnavailable) {
		t.Fatalf("CheckExtensions: have %v, want %v", err, ErrExtensionsUnavailable)
	}
}
