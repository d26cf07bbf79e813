package main

import (
	"context"

	"github.com/bjulian5/book-stack/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
