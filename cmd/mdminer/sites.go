package main

import "fmt"

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, site := range deps.Registry.List() {
		fmt.Fprintln(deps.Stdout, string(site))
	}
	return nil
}
