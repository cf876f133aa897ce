package mdlgraph

import "go.uber.org/zap"

// dispatchTopLevel routes one top-level keyword to its handler. An unknown
// keyword is not an error: the brace-delimited body that must follow it
// directly is skipped as a balanced region and parsing resumes at the next
// top-level keyword.
func (s *scanner) dispatchTopLevel(sc *Scene, kw string) error {
	switch kw {
	case "Version":
		return s.readVersion(sc)
	case "Model":
		return s.readModel(sc)
	case "Sequences":
		return s.readSequences(sc)
	case "Textures":
		return s.readTextures(sc)
	case "Materials":
		return s.readMaterials(sc)
	case "Geoset":
		return s.readGeoset(sc)
	case "GeosetAnim":
		return s.readGeosetAnim(sc)
	case "Bone":
		n, err := s.parseBoneHelperAttachment(NodeTypeBone)
		if err != nil {
			return err
		}
		sc.Bones = append(sc.Bones, n)
		return nil
	case "Helper":
		n, err := s.parseBoneHelperAttachment(NodeTypeHelper)
		if err != nil {
			return err
		}
		sc.Helpers = append(sc.Helpers, n)
		return nil
	case "Attachment":
		n, err := s.parseBoneHelperAttachment(NodeTypeAttachment)
		if err != nil {
			return err
		}
		sc.Attachments = append(sc.Attachments, n)
		return nil
	case "PivotPoints":
		return s.readPivotPoints(sc)
	case "EventObject":
		return s.readEventObject(sc)
	case "CollisionShape":
		return s.readCollisionShape(sc)
	case "GlobalSequences":
		return s.readGlobalSequences(sc)
	case "ParticleEmitter":
		return s.readParticleEmitter(sc)
	case "ParticleEmitter2":
		return s.readParticleEmitter2(sc)
	case "Camera":
		return s.readCamera(sc)
	case "Light":
		return s.readLight(sc)
	case "TextureAnims":
		return s.readTextureAnims(sc)
	case "RibbonEmitter":
		return s.readRibbonEmitter(sc)
	default:
		s.log.Debug("skipping unrecognized top-level block", zap.String("keyword", kw))
		return s.skipBalanced()
	}
}
