package server

import (
	"github.com/dustin/go-humanize"
	"stegobmp/pkg/model"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman        string `json:"setup_human"`
	EncryptionHuman   string `json:"encryption_human"`
	DataEncodingHuman string `json:"data_encoding_human"`
	StreamSizeHuman   string `json:"stream_size_human"`
	CapacityHuman     string `json:"capacity_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	DecryptionHuman   string `json:"decryption_human"`
	StreamSizeHuman   string `json:"stream_size_human"`
}

type humanizedAnalyzeStats struct {
	model.AnalyzeStats
	AnalysisHuman string `json:"analysis_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:       encodeStats,
		SetupHuman:        encodeStats.Setup.String(),
		EncryptionHuman:   encodeStats.Encryption.String(),
		DataEncodingHuman: encodeStats.DataEncoding.String(),
		StreamSizeHuman:   humanize.Bytes(uint64(encodeStats.StreamSize)),
		CapacityHuman:     humanize.Bytes(uint64(encodeStats.Capacity)),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		DecryptionHuman:   decodeStats.Decryption.String(),
		StreamSizeHuman:   humanize.Bytes(uint64(decodeStats.StreamSize)),
	}
}

func toHumanizedAnalyzeStats(analyzeStats model.AnalyzeStats) humanizedAnalyzeStats {
	return humanizedAnalyzeStats{AnalyzeStats: analyzeStats, AnalysisHuman: analyzeStats.Analysis.String()}
}
