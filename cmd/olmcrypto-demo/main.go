package main

import "github.com/matrix-org/olm-crypto-go/cmd/olmcrypto-demo/cmd"

func main() {
	cmd.Execute()
}
