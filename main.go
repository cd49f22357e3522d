package main

import (
	"github.com/anaypant119/har2openapi/cmd"
)

func main() {
	cmd.Execute()
}
