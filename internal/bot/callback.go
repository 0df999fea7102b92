package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadCallback = errors.New("malformed callback data")

// EncodeCallback packs the board owner and the cell position into button
// callback data.
func EncodeCallback(owner int64, row, col int) string {
	return fmt.Sprintf("%d:%d:%d", owner, row, col)
}

func DecodeCallback(data string) (owner int64, row, col int, err error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	owner, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	row, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	col, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	return owner, row, col, nil
}
