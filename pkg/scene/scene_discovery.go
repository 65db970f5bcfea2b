package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
	filePrefix   = "file:"
)

// Builtins maps built-in scene ids to their constructors
var Builtins = map[string]func() *Scene{
	"skyblock": NewSkyblockScene,
	"diorama":  NewDioramaScene,
}

var builtinInfo = []SceneInfo{
	{
		ID:          "skyblock",
		Name:        "Skyblock",
		DisplayName: "Skyblock",
		Description: "Brick platform with floating rubber, ivory and glass cubes",
		Group:       builtinGroup,
		Type:        "builtin",
	},
	{
		ID:          "diorama",
		Name:        "Diorama",
		DisplayName: "Diorama",
		Description: "Floating island with water, lava, a tree, a tower and gems",
		Group:       builtinGroup,
		Type:        "builtin",
	},
}

// scenesDir returns the first scenes directory found relative to the working directory
func scenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListConfigScenes scans the scenes directory and returns discovered JSON scenes
func ListConfigScenes() ([]SceneInfo, error) {
	dir := scenesDir()
	if dir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}
	return listConfigScenesIn(dir)
}

func listConfigScenesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseConfigMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseConfigMetadata reads the name, description and group of a scene file
// without building it. Missing fields fall back to values derived from the filename.
func ParseConfigMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:          filePrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	if meta.Name != "" {
		info.Name = meta.Name
		info.DisplayName = meta.Name
	}
	if meta.Group != "" {
		info.Group = meta.Group
	}
	info.Description = meta.Description
	return info, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	fileScenes, err := ListConfigScenes()
	if err != nil {
		return ScenesResponse{}, fmt.Errorf("failed to list scene files: %w", err)
	}
	return groupScenes(append(append([]SceneInfo{}, builtinInfo...), fileScenes...)), nil
}

// groupScenes groups scenes by their Group field: built-in first, then alphabetical
func groupScenes(all []SceneInfo) ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, s := range all {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	var groupNames []string
	for name := range groupMap {
		if name != builtinGroup {
			groupNames = append(groupNames, name)
		}
	}
	sort.Strings(groupNames)

	if scenes, ok := groupMap[builtinGroup]; ok {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: scenes})
	}
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return response
}

// Load resolves a scene id: a built-in name, "file:<name>" for a file in the
// scenes directory, or a path to a .json file
func Load(id string) (*Scene, error) {
	if ctor, ok := Builtins[id]; ok {
		return ctor(), nil
	}

	path := id
	if name, ok := strings.CutPrefix(id, filePrefix); ok {
		dir := scenesDir()
		if dir == "" {
			return nil, fmt.Errorf("scene %q: no scenes directory", id)
		}
		path = filepath.Join(dir, name+".json")
	}

	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("unknown scene %q (built-in: %v)", id, BuiltinNames())
	}
	return LoadScene(path)
}

// BuiltinNames returns the built-in scene ids in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtins))
	for name := range Builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// titleCase converts a filename-style string to title case
// e.g., "floating-island" -> "Floating Island"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
