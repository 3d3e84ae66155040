/*
 * Copyright the nest-go authors. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nestio/nest-go/internal"
	"github.com/nestio/nest-go/jsonstream"
)

// main is the main entry point for nest-go.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		err = printVersion()

	case "check":
		err = check(os.Args[2:])

	case "render":
		err = render(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  nest-go help")
	fmt.Println("  nest-go version")
	fmt.Println("  nest-go check [files]")
	fmt.Println("  nest-go render [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  check      Runs the given scenario files and verifies their expected outcomes.")
	fmt.Println("  render     Renders a scenario file as a JSON document.")
}

// printVersion prints (as JSON) the version info for this tool.
func printVersion() error {
	w := jsonstream.NewWriter(os.Stdout)

	if err := w.BeginObject(); err != nil {
		return err
	}
	{
		if err := w.Name("version"); err != nil {
			return err
		}
		version := internal.GitCommit
		if version == "" {
			version = "unknown"
		}
		if err := w.WriteString(version); err != nil {
			return err
		}

		if err := w.Name("build_time"); err != nil {
			return err
		}
		buildtime := internal.BuildTime
		if buildtime == "" {
			buildtime = "unknown-buildtime"
		}
		if err := w.WriteString(buildtime); err != nil {
			return err
		}
	}
	if err := w.EndObject(); err != nil {
		return err
	}

	if err := w.Finish(); err != nil {
		return err
	}

	fmt.Println()
	return nil
}
