package operations

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func writeJSON(fn string, data interface{}) error {
	out, err := json.MarshalIndent(data, "", "   ")
	if err != nil {
		return errors.Wrap(err, "marshalling output data")
	}

	f, err := os.Create(fn)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if _, err = f.Write(out); err != nil {
		return errors.WithStack(err)
	}

	if _, err = f.WriteString("\n"); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(f.Sync())
}

func printJSON(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "   ")
	if err != nil {
		return errors.Wrap(err, "marshalling output data")
	}

	fmt.Println(string(out))
	return nil
}
