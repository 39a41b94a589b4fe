package bsp

// called lump_t in c
type directory struct {
	Offset int32
	Size   int32
}

// Lumps of the file, in no particular order. Each Version maps these to
// its own slot in the header (see version.go).
type lump int

const (
	lumpEntities lump = iota
	lumpPlanes
	lumpTextures
	lumpVertexes
	lumpVisibility
	lumpNodes
	lumpTexInfo
	lumpFaces
	lumpLighting
	lumpClipNodes
	lumpLeafs
	lumpMarkSurfaces
	lumpLeafBrushes
	lumpEdges
	lumpSurfaceEdges // SURFEDGES
	lumpModels
	lumpBrushes
	lumpBrushSides
	lumpPop
	lumpAreas
	lumpAreaPortals
	lumpCount
)

var lumpNames = [lumpCount]string{
	"entities", "planes", "textures", "vertexes", "visibility", "nodes",
	"texinfo", "faces", "lighting", "clipnodes", "leafs", "marksurfaces",
	"leafbrushes", "edges", "surfedges", "models", "brushes", "brushsides",
	"pop", "areas", "areaportals",
}

func (l lump) String() string {
	if l < 0 || l >= lumpCount {
		return "unknown"
	}
	return lumpNames[l]
}

// On disk record layouts. All multi byte fields are little endian.

type planeData struct {
	Normal   [3]float32
	Distance float32
	Type     int32 // 0: axial plane in X, 1: axial plane in Y, 2 axial in Z, 3,4,5 similar but non axial
}

type nodeData struct {
	PlaneID      int32
	Children     [2]int16 // front, back; negative values encode leafs
	Box          [6]int16
	FirstSurface uint16
	SurfaceCount uint16
}

type leafData struct {
	Type             int32 // Contents
	VisOfs           int32 // byte offset into the visibility lump, -1 for "sees everything"
	Box              [6]int16
	FirstMarkSurface uint16
	MarkSurfaceCount uint16
	Ambients         [4]byte // ambient sound levels: water, sky, slime, lava
}

type faceData struct {
	PlaneID        int16 // The plane in which the face lies, must be in [0,numplanes[
	Side           int16
	ListEdgeID     int32
	ListEdgeNumber int16
	TexInfoID      int16
	LightStyle     [4]uint8
	LightMap       int32 // Pointer inside the general light map, or -1
}

// the first edge of the list is never used
type edgeData struct {
	Vertex0 uint16 // id of start vertex, must be in [0,numvertices[
	Vertex1 uint16 // id of end vertex, must be in [0,numvertices[
}

type modelData struct {
	BoundingBox  [6]float32
	Origin       [3]float32
	HeadNode     [4]int32 // hull roots; 0 indexes nodes, 1-3 index clipnodes
	VisLeafCount int32    // not including the solid leaf 0
	FirstFace    int32
	FaceCount    int32
}

type texInfoData struct {
	VectorS   [3]float32 // S vector, horizontal in texture space
	DistS     float32    // horizontal offset in texture space
	VectorT   [3]float32 // T vector, vertical in texture space
	DistT     float32    // vertical offset in texture space
	TextureID uint32     // Index of mip texture, must be in [0,numtex[
	Animated  uint32     // 0 for ordinary textures, 1 for water
}

type mipTexData struct {
	Name   [16]byte
	Width  uint32
	Height uint32
	// Offset[0] to Pix[width * height]
	// 1: to Pix[width/2 * height/2]
	// 2: to Pix[width/4 * height/4]
	// 3: to Pix[width/8 * height/8]
	Offset [4]uint32
}

type clipNodeData struct {
	PlaneID  int32    // the plane which splits the node
	Children [2]int16 // if positive id of the child node, negative a contents value
}

const (
	planeSize       = 20
	nodeSize        = 24
	leafSize        = 28
	faceSize        = 20
	edgeSize        = 4
	modelSize       = 64
	texInfoSize     = 40
	mipTexSize      = 40
	clipNodeSize    = 8
	vertexSize      = 12
	markSurfaceSize = 2 // uint16 index into faces
	surfaceEdgeSize = 2 // int16 index into edges, negative for reversed direction
)
