package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Socket is a named attachment point of a model, relative to the model root.
type Socket struct {
	Name        string
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func LoadSockets(filename string) (map[string]Socket, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open model %s", filename)
	}
	sockets := SocketsFromDocument(doc)
	LogIOInfo(fmt.Sprintf("[LoadSockets] %s: found %d named node(s)", filename, len(sockets)))
	return sockets, nil
}

// SocketsFromDocument collects every named node of the default scene with
// its transform accumulated from the scene root.
func SocketsFromDocument(doc *gltf.Document) map[string]Socket {
	sockets := make(map[string]Socket)
	var roots []int
	if len(doc.Scenes) > 0 {
		defaultSceneIndex := 0
		if doc.Scene != nil {
			defaultSceneIndex = int(*doc.Scene)
		}
		if defaultSceneIndex < len(doc.Scenes) {
			for _, nodeIndex := range doc.Scenes[defaultSceneIndex].Nodes {
				roots = append(roots, int(nodeIndex))
			}
		}
	} else {
		roots = unparentedNodes(doc)
	}
	for _, root := range roots {
		collectSockets(doc, root, mgl32.Ident4(), sockets)
	}
	return sockets
}

func unparentedNodes(doc *gltf.Document) []int {
	hasParent := make([]bool, len(doc.Nodes))
	for _, node := range doc.Nodes {
		for _, child := range node.Children {
			if int(child) < len(hasParent) {
				hasParent[int(child)] = true
			}
		}
	}
	var roots []int
	for i, parented := range hasParent {
		if !parented {
			roots = append(roots, i)
		}
	}
	return roots
}

func collectSockets(doc *gltf.Document, nodeIndex int, parentMatrix mgl32.Mat4, sockets map[string]Socket) {
	if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
		return
	}
	docNode := doc.Nodes[nodeIndex]
	translation := docNode.TranslationOrDefault()
	rotation := docNode.RotationOrDefault()
	localRotation := mgl32.Quat{
		W: float32(rotation[3]),
		V: mgl32.Vec3{float32(rotation[0]), float32(rotation[1]), float32(rotation[2])},
	}.Normalize()
	local := mgl32.Translate3D(float32(translation[0]), float32(translation[1]), float32(translation[2])).Mul4(localRotation.Mat4())
	world := parentMatrix.Mul4(local)

	if docNode.Name != "" {
		sockets[docNode.Name] = Socket{
			Name:        docNode.Name,
			Translation: ExtractPosition(world),
			Rotation:    mgl32.Mat4ToQuat(world),
		}
	}
	for _, child := range docNode.Children {
		collectSockets(doc, int(child), world, sockets)
	}
}
