//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices -framework Cocoa
#import <ApplicationServices/ApplicationServices.h>
#import <Cocoa/Cocoa.h>

int checkAccessibilityPermission(int prompt) {
    NSDictionary *options = @{(__bridge id)kAXTrustedCheckOptionPrompt: prompt ? @YES : @NO};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}
*/
import "C"

import (
	"errors"
	"fmt"
)

// ErrAccessibility is returned when the process is not trusted for accessibility.
var ErrAccessibility = errors.New("accessibility permission not granted")

// CheckAccessibility checks if the app has accessibility permissions (needed
// for global hotkeys and for posting synthetic clicks)
func CheckAccessibility() bool {
	return C.checkAccessibilityPermission(0) == 1
}

// PromptAccessibility shows the system prompt that links to the settings pane
func PromptAccessibility() bool {
	return C.checkAccessibilityPermission(1) == 1
}

// EnsurePermissions checks and requests all required permissions
func EnsurePermissions() error {
	if CheckAccessibility() {
		return nil
	}

	fmt.Println("⚠️  Accessibility permission required for hotkeys and clicking")
	fmt.Println("   Go to: System Settings → Privacy & Security → Accessibility")
	if PromptAccessibility() {
		return nil
	}
	return ErrAccessibility
}
