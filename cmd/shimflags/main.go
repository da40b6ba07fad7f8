// Command shimflags prints the CGO_CFLAGS needed to build the iOS picker
// shim, honoring IPHONEOS_DEPLOYMENT_TARGET.
//
//	CGO_CFLAGS="$(go run ./cmd/shimflags)" GOOS=ios CGO_ENABLED=1 go build ./...
package main

import (
	"fmt"
	"os"
	"strings"

	"docpicker/shared"
)

func cflags(deploymentTarget string) string {
	return strings.Join([]string{
		"-miphoneos-version-min=" + shared.DeploymentTarget(deploymentTarget),
		"-fobjc-arc",
		"-std=c11",
	}, " ")
}

func main() {
	fmt.Println(cflags(os.Getenv("IPHONEOS_DEPLOYMENT_TARGET")))
}
