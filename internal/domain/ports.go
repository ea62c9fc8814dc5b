package domain

// SceneGraph is the capability the host application supplies. Accessors return
// copies; the only way to change the graph is Apply.
type SceneGraph interface {
	Object(name string) (Object, error)
	Mesh(name string) (Mesh, error)
	Armature(name string) (Armature, error)
	Scene(name string) (Scene, error)
	Material(name string) (Material, error)
	Image(name string) (Image, error)
	Apply(cmd Command) error
}

// FileProbe checks whether a resolved file path exists.
type FileProbe interface {
	Exists(path string) bool
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunHistory persists validation run entries for a project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo exposes repository metadata for a path.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
