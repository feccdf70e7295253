// Package esx reads and edits KORG Electribe ESX sample card images.
//
// Example:
//
//	img, err := esx.OpenFile("card.esx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = esx.ImportWAV(img, 0, "kick.wav")
//	err = img.Save("card.esx")
package esx
