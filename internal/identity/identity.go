// Package identity resolves the OS login of the tracker user.
package identity

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// Login returns the current OS login name. The environment is consulted
// when the user database lookup fails, which happens in minimal
// containers.
func Login() (string, error) {
	if u, err := user.Current(); err == nil && strings.TrimSpace(u.Username) != "" {
		return strings.TrimSpace(u.Username), nil
	}

	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("determine current user login")
}
