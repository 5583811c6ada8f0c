// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/go-arcade/navtree/internal/engine/model"
)

// FileSource 从 YAML/JSON 文件读取菜单，每次 Fetch 都重新读取
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Fetch(ctx context.Context, _ *model.Session) ([]model.MenuRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadRecordsFile(s.path)
}

// LoadRecordsFile 读取菜单文件
func LoadRecordsFile(path string) ([]model.MenuRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrSourceUnavailable, path, err)
	}
	return decodeRecords(raw)
}
