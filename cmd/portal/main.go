// portal serves the municipal council portal's content API and provides the
// operator commands that provision and inspect its data store.
package main

import (
	"os"

	"council-portal-api/cmd/portal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
