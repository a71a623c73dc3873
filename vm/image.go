// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Image is a program as stored on disk: consecutive cells loaded at
// addresses 0, 1, 2, and so on.
type Image []Cell

// Parse reads a program in text form from r: comma separated, optionally
// signed ASCII decimal integers. Surrounding whitespace (such as a trailing
// newline) is tolerated around each value. A malformed value fails the whole
// parse; no machine is ever built from a partial image.
func Parse(r io.Reader) (Image, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "program read failed")
	}
	toks := bytes.Split(src, []byte{','})
	img := make(Image, 0, len(toks))
	for n, tok := range toks {
		v, err := strconv.ParseInt(string(bytes.TrimSpace(tok)), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value in cell %d", n)
		}
		img = append(img, Cell(v))
	}
	return img, nil
}

// Load loads a program image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	defer f.Close()
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %v failed", fileName)
	}
	return img, nil
}

// String renders the image in program text form, suitable for Parse.
func (img Image) String() string {
	var b bytes.Buffer
	for n, v := range img {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
