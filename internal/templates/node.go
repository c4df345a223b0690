package templates

import (
	"github.com/chaz8081/proboot/internal/config"
)

// packageManager spells the same intent for npm and pnpm.
type packageManager string

func (pm packageManager) init() []string {
	if pm == config.PackageManagerNPM {
		return []string{"init", "-y"}
	}
	return []string{"init"}
}

func (pm packageManager) addDev(pkgs []string) []string {
	verb := "add"
	if pm == config.PackageManagerNPM {
		verb = "install"
	}
	return append([]string{verb, "--save-dev"}, pkgs...)
}

func (pm packageManager) install() []string {
	return []string{"install"}
}

// exec returns the binary and arguments that run a locally installed tool.
func (pm packageManager) exec(tool string, args ...string) (string, []string) {
	if pm == config.PackageManagerNPM {
		return "npx", append([]string{tool}, args...)
	}
	return string(pm), append([]string{"exec", tool}, args...)
}

// createVite scaffolds a Vite app in the current directory. npm needs "--"
// before arguments meant for the initializer.
func (pm packageManager) createVite(template string) []string {
	args := []string{"create", "vite@latest", "."}
	if pm == config.PackageManagerNPM {
		args = append(args, "--")
	}
	return append(args, "--template", template)
}

func (pm packageManager) runHint(script string) string {
	return string(pm) + " run " + script
}
