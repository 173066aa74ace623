package main

import (
	"reflect"
	"testing"
)

func TestBodyBlocksOrder(t *testing.T) {
	doc := mustDoc(t, `
		<div class="body">
			<h2>First</h2>
			<p>Intro text.</p>
			<ul><li>one</li><li>two</li></ul>
			<p><img src="/pic.png" alt="a pic"></p>
			<blockquote>quoted words</blockquote>
			<ol><li>first</li><li>second</li></ol>
			<h3>Deeper</h3>
		</div>`)

	got := BodyBlocks(doc.Find(".body"))
	want := []string{
		"## First",
		"Intro text.",
		"- one\n- two",
		"![a pic](/pic.png)",
		"> quoted words",
		"1. first\n2. second",
		"### Deeper",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BodyBlocks() = %#v, want %#v", got, want)
	}
}

func TestBodyBlocksSkipsChrome(t *testing.T) {
	doc := mustDoc(t, `
		<div class="body">
			<nav><a href="/">home</a></nav>
			<p>kept</p>
			<aside>related junk</aside>
			<form><button>submit</button></form>
		</div>`)

	got := BodyBlocks(doc.Find(".body"))
	want := []string{"kept"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BodyBlocks() = %#v, want %#v", got, want)
	}
}

func TestBodyBlocksNestedContainers(t *testing.T) {
	doc := mustDoc(t, `
		<div class="body">
			<div><div><p>deep paragraph</p></div></div>
			<figure><img src="/f.jpg" alt=""><figcaption>caption</figcaption></figure>
		</div>`)

	got := BodyBlocks(doc.Find(".body"))
	want := []string{"deep paragraph", "![](/f.jpg)", "caption"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BodyBlocks() = %#v, want %#v", got, want)
	}
}

func TestBodyBlocksEmptyElementsDropped(t *testing.T) {
	doc := mustDoc(t, `<div class="body"><p>  </p><h2></h2><p>real</p></div>`)

	got := BodyBlocks(doc.Find(".body"))
	want := []string{"real"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BodyBlocks() = %#v, want %#v", got, want)
	}
}
