// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package main

import (
	"fmt"

	"github.com/fatih/color"
)

func runChecks(client *Client, checks []Check) (pass, fail int) {
	bold := color.New(color.Bold)
	boldGreen := color.New(color.Bold, color.FgGreen)
	boldRed := color.New(color.Bold, color.FgRed)

	fmt.Println("\nRunning Checks")
	for i, ck := range checks {
		bold.Printf("%3d. %s\n", i, ck.Name())
	}
	fmt.Println()

	for _, ck := range checks {
		err := ck.Run(client)
		if err != nil {
			fail++
			fmt.Printf("%s %s\n", boldRed.Sprint("FAIL"), bold.Sprint(ck.Name()))
			fmt.Printf("error: %+v\n", err)
		} else {
			pass++
			fmt.Printf("%s %s\n", boldGreen.Sprint("PASS"), bold.Sprint(ck.Name()))
		}
	}
	return pass, fail
}
