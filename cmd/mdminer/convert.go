package main

import (
	"fmt"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	page, err := deps.LoadPage(deps.Ctx, PageSource{
		URL:     c.URL,
		File:    c.File,
		PageURL: c.PageURL,
		Render:  c.Render,
	})
	if err != nil {
		return err
	}

	resp := deps.Dispatcher.Handle(deps.Ctx, &mdminer.Request{
		Action:        mdminer.ActionConvertToMarkdown,
		Site:          mdminer.Site(c.Site),
		IncludeImages: c.Images,
		Page:          page,
	})
	if !resp.Success {
		return fmt.Errorf("%s", resp.Error)
	}

	fmt.Fprintln(deps.Stdout, resp.Message)
	fmt.Fprintf(deps.Stdout, "Content hash: %s\n", resp.ContentHash)

	return nil
}
