// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"spellbook-cli/pkg/spell"
)

// mediaModule wraps ffmpeg/youtube-dl style transcoding chores.
func mediaModule() *spell.Module {
	return spell.NewModule("media").
		Source("builtin").
		Prefix(true).
		Add(
			spell.NewTask("transcode", command("ffmpeg", "-hide_banner", "-i")).
				Summary("Transcode a file with ffmpeg (args: input output)").
				MustBuild(),
			spell.NewTask("download", command("yt-dlp", "--no-playlist")).
				Summary("Download a single video").
				MustBuild(),
		).
		MustBuild()
}
