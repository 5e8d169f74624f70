package main

import (
	"fmt"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
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
		Action: mdminer.ActionGetArticleInfo,
		Site:   mdminer.Site(c.Site),
		Page:   page,
	})
	if !resp.Success {
		return fmt.Errorf("%s", resp.Error)
	}

	fmt.Fprintf(deps.Stdout, "Title:  %s\n", resp.ArticleInfo.Title)
	fmt.Fprintf(deps.Stdout, "Author: %s\n", resp.ArticleInfo.Author)
	fmt.Fprintf(deps.Stdout, "Date:   %s\n", resp.ArticleInfo.Date)

	return nil
}
