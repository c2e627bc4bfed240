package domain

const (
	// PyProjectFileName is the standard project metadata file.
	PyProjectFileName = "pyproject.toml"

	// RequirementsFileName is the pip requirements file.
	RequirementsFileName = "requirements.txt"

	// CondaEnvFileName is the conda environment file.
	CondaEnvFileName = "environment.yml"

	// PackageMarkerName marks a directory as an importable package.
	PackageMarkerName = "__init__.py"

	// PythonSourceSuffix is the extension of python source files.
	PythonSourceSuffix = ".py"

	// DistInfoSuffix is the suffix of wheel metadata directories.
	DistInfoSuffix = ".dist-info"

	// MetadataFileName is the core metadata file inside a dist-info directory.
	MetadataFileName = "METADATA"

	// TopLevelFileName lists the importable top-level names of a wheel.
	TopLevelFileName = "top_level.txt"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
