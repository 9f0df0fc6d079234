package seisfile

// Header decoders register themselves with the registry on import.
import (
	_ "github.com/simonhull/seisfile/internal/baikal7"
	_ "github.com/simonhull/seisfile/internal/baikal8"
	_ "github.com/simonhull/seisfile/internal/sigma"
)
